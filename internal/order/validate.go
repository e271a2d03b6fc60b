package order

import "regexp"

var (
	phonePattern   = regexp.MustCompile(`^[0-9]{10}$`)
	pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)
)

// validateCustomerInfo checks the shipping form field by field and collects
// every failure, so the client can render per-field messages in one pass.
func validateCustomerInfo(info CustomerInfo) map[string]string {
	errs := map[string]string{}
	if len(info.Name) < 2 {
		errs["name"] = "Name must be at least 2 characters"
	}
	if !phonePattern.MatchString(info.Phone) {
		errs["phone"] = "Phone number must be 10 digits"
	}
	if len(info.Address) < 10 {
		errs["address"] = "Address must be at least 10 characters"
	}
	if len(info.City) < 2 {
		errs["city"] = "City is required"
	}
	if len(info.State) < 2 {
		errs["state"] = "State is required"
	}
	if !pincodePattern.MatchString(info.Pincode) {
		errs["pincode"] = "Pincode must be 6 digits"
	}
	return errs
}
