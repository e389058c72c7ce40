package usecase

import "flights/internal/domain/entity"

// AppendFlight adds a flight built from the given text to the end of flights
// and returns the extended list. Inputs are not validated.
func AppendFlight(flights []entity.Flight, destination, departureDate, aircraftType string) []entity.Flight {
	return append(flights, entity.NewFlight(destination, departureDate, aircraftType))
}

// SelectByDate returns, in original order, the flights whose departure date
// equals date exactly. Dates are compared as text, not as calendar dates.
// The input list is left untouched.
func SelectByDate(flights []entity.Flight, date string) []entity.Flight {
	result := make([]entity.Flight, 0)
	for _, f := range flights {
		if f.DepartureDate == date {
			result = append(result, f)
		}
	}
	return result
}
