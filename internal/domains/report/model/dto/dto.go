package dto

type SummaryResponse struct {
	Rooms    map[string]int `json:"rooms"`
	Bookings map[string]int `json:"bookings"`
	Revenue  float64        `json:"revenue"`
}
