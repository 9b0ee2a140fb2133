package internal

import (
	r "regexp"

	"github.com/go-playground/validator/v10"
)

var topicNameRegex = r.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

var TopicNameValidator validator.Func = func(fl validator.FieldLevel) bool {
	name, ok := fl.Field().Interface().(string)

	if !ok {
		return false
	}

	return topicNameRegex.MatchString(name)
}
