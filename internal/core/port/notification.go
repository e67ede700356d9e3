package port

//go:generate mockgen -source=notification.go -destination=mock/notification.go -package=mock

// Notifier delivers fire-and-forget user notifications. Failures are
// never fatal to the calling transaction.
type Notifier interface {
	Notify(userID uint64, event string, payload any)
}
