package auth

// User is the authenticated shopper's profile.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"created_at"`
}

// Address is one entry in the shopper's shipping address book. At most one
// address carries IsDefault after any mutation on a non-empty book.
type Address struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Recipient     string `json:"recipient"`
	Phone         string `json:"phone"`
	ZipCode       string `json:"zip_code"`
	Address       string `json:"address"`
	AddressDetail string `json:"address_detail"`
	IsDefault     bool   `json:"is_default"`
}

// AddressInput carries the fields for a new address; the id is assigned by
// the store.
type AddressInput struct {
	Name          string `json:"name" validate:"required"`
	Recipient     string `json:"recipient" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	ZipCode       string `json:"zip_code" validate:"required"`
	Address       string `json:"address" validate:"required"`
	AddressDetail string `json:"address_detail"`
	IsDefault     bool   `json:"is_default"`
}

// AddressPatch is a partial update; nil fields are left untouched.
type AddressPatch struct {
	Name          *string `json:"name"`
	Recipient     *string `json:"recipient"`
	Phone         *string `json:"phone"`
	ZipCode       *string `json:"zip_code"`
	Address       *string `json:"address"`
	AddressDetail *string `json:"address_detail"`
	IsDefault     *bool   `json:"is_default"`
}

// ProfilePatch is a partial profile update; only name and phone are
// shopper-editable.
type ProfilePatch struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}
