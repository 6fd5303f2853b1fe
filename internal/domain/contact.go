package domain

// ContactMessage is a storefront contact form submission.
type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}
