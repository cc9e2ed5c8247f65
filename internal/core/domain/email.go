package domain

type CategoryKind string

const (
	CategoryWelcome       CategoryKind = "welcome"
	CategoryPasswordReset CategoryKind = "password_reset"
	CategoryTransactional CategoryKind = "transactional"
)

// EmailTypeHeader overrides the declared category at compose time. Its value
// is passed through unchecked so new categories can flow before this library
// learns about them.
const EmailTypeHeader = "X-Email-Type"

type Category struct {
	Kind CategoryKind // empty means no category declared
	Link string
}

// Validate enforces the per-category required fields. Absent or unknown kinds
// pass; the composer resolves those to a default instead of rejecting them.
func (c Category) Validate() error {
	switch c.Kind {
	case CategoryWelcome, CategoryPasswordReset:
		if c.Link == "" {
			return &MissingFieldError{Category: c.Kind, Field: "link"}
		}
	}
	return nil
}

func knownCategory(kind CategoryKind) bool {
	switch kind {
	case CategoryWelcome, CategoryPasswordReset, CategoryTransactional:
		return true
	}
	return false
}

type Address struct {
	Name    string
	Address string
}

type Email struct {
	To       []Address
	From     Address // zero value means no explicit sender
	Subject  string
	TextBody string
	HTMLBody string
	Headers  map[string]string
	Category Category
}

func NewWelcomeEmail(to Address, link string) (Email, error) {
	return newCategoryEmail(to, Category{Kind: CategoryWelcome, Link: link})
}

func NewPasswordResetEmail(to Address, link string) (Email, error) {
	return newCategoryEmail(to, Category{Kind: CategoryPasswordReset, Link: link})
}

// NewMagicLinkEmail builds a password reset email: magic-link sign-in shares
// its delivery shape and required fields.
func NewMagicLinkEmail(to Address, link string) (Email, error) {
	return NewPasswordResetEmail(to, link)
}

func NewTransactionalEmail(to Address) Email {
	return Email{
		To:       []Address{to},
		Category: Category{Kind: CategoryTransactional},
	}
}

func newCategoryEmail(to Address, category Category) (Email, error) {
	if err := category.Validate(); err != nil {
		return Email{}, err
	}
	return Email{To: []Address{to}, Category: category}, nil
}

// WithCategory returns a copy carrying the given category kind. Only the three
// known kinds are accepted here; arbitrary strings must go through the
// EmailTypeHeader escape hatch instead.
func (e Email) WithCategory(kind CategoryKind) (Email, error) {
	if !knownCategory(kind) {
		return e, &UnknownCategoryError{Kind: string(kind)}
	}
	e.Category.Kind = kind
	return e, nil
}

// WithLink attaches the category link without checking it; Validate decides
// later whether the category actually requires one.
func (e Email) WithLink(link string) Email {
	e.Category.Link = link
	return e
}

// WithHeader returns a copy with the header set. The headers map is cloned so
// the original email stays untouched.
func (e Email) WithHeader(name, value string) Email {
	headers := make(map[string]string, len(e.Headers)+1)
	for k, v := range e.Headers {
		headers[k] = v
	}
	headers[name] = value
	e.Headers = headers
	return e
}

// Validate checks the category invariants before composition. Emails without
// a category, or with a category this library does not know, are deliberately
// accepted.
func (e Email) Validate() error {
	return e.Category.Validate()
}
