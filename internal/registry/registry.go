package registry

const (
	NewsletterType = "newsletter"
)
