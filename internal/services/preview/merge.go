package preview

import "invoice-preview-backend/internal/models"

// Resolve returns the first source accepted by set, in order.
func Resolve[T any](set func(T) bool, sources ...T) (T, bool) {
	for _, s := range sources {
		if set(s) {
			return s, true
		}
	}
	var zero T
	return zero, false
}

func ResolveString(sources ...string) string {
	v, _ := Resolve(func(s string) bool { return s != "" }, sources...)
	return v
}

func ResolveLines(sources ...[]string) []string {
	v, _ := Resolve(func(l []string) bool { return len(l) > 0 }, sources...)
	return v
}

// mergeFrom fills the issuer block from the profile where the invoice
// leaves a field empty. profile must not be nil.
func mergeFrom(from models.Contact, profile *models.Profile) ContactView {
	return ContactView{
		Name:     ResolveString(from.Name, profile.Name),
		Location: ResolveLines(from.Location, []string(profile.Location)),
		Email:    ResolveString(from.Email, profile.Email),
		Phone:    ResolveString(from.Phone, profile.Phone),
	}
}

func contactView(c models.Contact) ContactView {
	return ContactView{
		Name:     c.Name,
		Location: c.Location,
		Email:    c.Email,
		Phone:    c.Phone,
	}
}
