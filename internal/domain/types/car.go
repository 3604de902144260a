package types

// Car is a stored vehicle whose gear is governed by a gearbox.
type Car struct {
	ID         CarID  `json:"id"`
	Model      string `json:"model"`
	Seats      int    `json:"seats"`
	Gear       int    `json:"gear"`
	CreatedUTC int64  `json:"created_utc"`
	UpdatedUTC int64  `json:"updated_utc"`
}
