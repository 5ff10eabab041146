package pagination

// OffsetRequest is a page/size pagination request. The zero value is valid
// after Validate, which normalizes instead of rejecting: out-of-range values
// are clamped so a sloppy query string still yields a usable page.
type OffsetRequest struct {
	Page int `json:"page" query:"page" validate:"min=1"`
	Size int `json:"size" query:"size" validate:"min=1,max=1000"`
}

// Validate normalizes the request in place. It never fails; the error return
// keeps the signature uniform with validating binders.
func (r *OffsetRequest) Validate() error {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Size <= 0 {
		r.Size = PageDefaultSize
	}
	if r.Size > PageMaxSize {
		r.Size = PageMaxSize
	}
	return nil
}

// Offset is the number of items preceding the requested page.
func (r *OffsetRequest) Offset() int {
	return (r.Page - 1) * r.Size
}
