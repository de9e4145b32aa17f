package entity

type Player struct {
	Name string `json:"name"`
	Mark Mark   `json:"mark"`
}
