package models

// Flight role values. FlightRoleConnecting keeps the literal "flight2"
// string the frontend templates key on.
const (
	FlightRoleDeparture  = "departure"
	FlightRoleConnecting = "flight2"
	FlightRoleReturn     = "return"
)

// Cabin class values.
const (
	CabinEconomy        = "Economy"
	CabinPremiumEconomy = "Premium Economy"
	CabinBusiness       = "Business"
	CabinFirstClass     = "First Class"
)

func ValidFlightRole(role string) bool {
	switch role {
	case FlightRoleDeparture, FlightRoleConnecting, FlightRoleReturn:
		return true
	}
	return false
}

func ValidCabin(cabin string) bool {
	switch cabin {
	case CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirstClass:
		return true
	}
	return false
}

type Flight struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	CustomerID   uint   `gorm:"index;column:customer_id" json:"customer_id"`
	Role         string `gorm:"size:20;column:role" json:"role"`
	FromLocation string `gorm:"size:100;column:from_location" json:"from"`
	ToLocation   string `gorm:"size:100;column:to_location" json:"to"`
	Date         string `gorm:"size:100" json:"date"`
	Time         string `gorm:"size:50" json:"time"`
	Airline      string `gorm:"size:100" json:"airline"`
	FlightNumber string `gorm:"size:50;column:flight_number" json:"flightNumber"`
	Cabin        string `gorm:"size:20;default:'Economy'" json:"cabin"`
}
