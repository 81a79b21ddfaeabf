package dto

// AddressSearchRequest - форма поиска адреса по почтовому индексу
type AddressSearchRequest struct {
	Zipcode string `json:"zipcode" form:"zipcode" query:"zipcode" validate:"required,max=16"`
}
