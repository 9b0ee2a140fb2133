package internal

import "fmt"

type EntityNotFound struct {
	Id   string
	Type string
}

type InvalidNewsletterStatus struct {
	Id     int64
	Status string
}

type StaleSelection struct {
	Expected int
	Matched  int
}

func (e EntityNotFound) Error() string {
	return fmt.Sprintf("entity %v of type %v not found", e.Id, e.Type)
}

func (e InvalidNewsletterStatus) Error() string {
	return fmt.Sprintf("newsletter %v has status %v", e.Id, e.Status)
}

func (e StaleSelection) Error() string {
	return fmt.Sprintf("selection is stale - expected %v matching newsletters, found %v", e.Expected, e.Matched)
}
