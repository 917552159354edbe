package handlers

// HandlerBundle groups all endpoint handlers into one struct so route
// registration takes a single dependency.
type HandlerBundle struct {
	Auth         *AuthHandler
	Booking      *BookingHandler
	Payment      *PaymentHandler
	Availability *AvailabilityHandler
	Puja         *PujaHandler
	User         *UserHandler
	Home         *HomeHandler
	Storage      *StorageHandler
}
