package blogservice

import (
	"github.com/sushihentaime/blogfront/internal/common"
)

func validateTitle(v *common.Validator, title string) {
	v.Check(v.NotBlank(title), "title", "must be provided")
	v.Check(v.CheckStringLength(title, 0, 200), "title", "must not be more than 200 characters long")
}

func validateCategory(v *common.Validator, category string) {
	v.Check(category != "", "category", "must be selected")
	v.Check(category == "" || v.PermittedValue(category, Categories...), "category", "must be one of the listed categories")
}

func validateID(v *common.Validator, id string) {
	v.Check(id != "", "id", "must be provided")
}
