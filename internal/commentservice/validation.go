package commentservice

import "github.com/sushihentaime/blogfront/internal/common"

func validateContent(v *common.Validator, content string) {
	v.Check(v.NotBlank(content), "content", "must be provided")
	v.Check(v.CheckStringLength(content, 0, 2000), "content", "must not be more than 2000 characters long")
}

func validateCommentID(v *common.Validator, id string) {
	v.Check(id != "", "comment_id", "must be provided")
}
