package models

import "fmt"

type Category struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CreateTime string `json:"create_time,omitempty"`
}

func (c Category) String() string {
	return fmt.Sprintf("#%d %s", c.ID, c.Name)
}

// NewCategory is the POST /categories/ body.
type NewCategory struct {
	Name string `json:"name" validate:"required,max=50"`
}
