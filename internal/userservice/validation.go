package userservice

import (
	"github.com/sushihentaime/blogfront/internal/apiclient"
	"github.com/sushihentaime/blogfront/internal/common"
)

func validateEmail(v *common.Validator, email string) {
	v.Check(email != "", "email", "must be provided")
	v.Check(email == "" || common.EmailRX.MatchString(email), "email", "must be a valid email address")
}

// Password policy is enforced by the backend.
func validatePassword(v *common.Validator, password string) {
	v.Check(password != "", "password", "must be provided")
}

func validateNewPassword(v *common.Validator, password string) {
	validatePassword(v, password)
	v.Check(password == "" || v.CheckStringLength(password, 6, 72), "password", "must be between 6 and 72 characters long")
}

func validateName(v *common.Validator, name, field string) {
	v.Check(v.NotBlank(name), field, "must be provided")
	v.Check(v.CheckStringLength(name, 0, 50), field, "must not be more than 50 characters long")
}

func validateProfile(v *common.Validator, form apiclient.ProfileForm) {
	v.Check(v.CheckStringLength(form.FirstName, 0, 50), "firstName", "must not be more than 50 characters long")
	v.Check(v.CheckStringLength(form.LastName, 0, 50), "lastName", "must not be more than 50 characters long")
	v.Check(v.CheckStringLength(form.Bio, 0, 500), "bio", "must not be more than 500 characters long")
}
