package models

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type AddCartItemRequest struct {
	ServiceID     string  `json:"serviceId" binding:"required"`
	Price         float64 `json:"price" binding:"required"`
	Quantity      int     `json:"quantity"`
	ScheduledDate *string `json:"scheduledDate"`
	ScheduledTime *string `json:"scheduledTime"`
}

type UpdateCartItemRequest struct {
	Quantity      *int    `json:"quantity"`
	ScheduledDate *string `json:"scheduledDate"`
	ScheduledTime *string `json:"scheduledTime"`
}

type CheckoutRequest struct {
	Address             string `json:"address"`
	City                string `json:"city"`
	State               string `json:"state"`
	ZipCode             string `json:"zipCode"`
	SpecialInstructions string `json:"specialInstructions"`
}

// CheckoutResult is the checkout response body. Success means at least
// one booking landed; Errors lists the cart items that did not convert.
type CheckoutResult struct {
	Success  bool      `json:"success"`
	Bookings []Booking `json:"bookings"`
	Errors   []string  `json:"errors"`
}

type CreateNotificationRequest struct {
	UserID    string `json:"userId"`
	Title     string `json:"title" binding:"required"`
	Message   string `json:"message" binding:"required"`
	Type      string `json:"type" binding:"required"`
	RelatedID string `json:"relatedId"`
}
