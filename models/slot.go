package models

// AvailabilitySlot is one weekly bookable hour a provider has opened.
// A full week of nominal working hours is 56 slots (7 days x 8 hours).
type AvailabilitySlot struct {
	ID         string `bson:"id" json:"id"`
	ProviderID string `bson:"providerId" json:"providerId"`
	Weekday    int    `bson:"weekday" json:"weekday"` // 0 = Sunday
	StartHour  int    `bson:"startHour" json:"startHour"`
	EndHour    int    `bson:"endHour" json:"endHour"`
	Available  bool   `bson:"available" json:"available"`
}

// MaxWeeklySlots caps the availability signal denominator.
const MaxWeeklySlots = 56
