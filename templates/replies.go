// Package templates holds the fixed reply texts and the rendering helpers
// for reservation replies. The bot speaks a single locale.
package templates

import (
	"fmt"
	"strings"

	"linebook-service/internal/domain/entity"
	"linebook-service/pkg/utils"
)

const (
	ReserveFormatError = "Invalid reservation format.\nExample: reserve 2023/05/01 14:00 haircut"
	CancelFormatError  = "Invalid cancel format.\nExample: cancel 2023/05/01"
	NoReservations     = "You have no reservations."
	ReservationListHdr = "Your current reservations:"
	CancelNotFound     = "No reservation was found for that date."
	CancelConfirmed    = "Your reservation has been cancelled."
	GenericError       = "An error occurred. Please try again."

	Welcome = "Welcome to the reservation bot!\nType \"help\" to see the available commands."

	Help = "Available commands:\n" +
		"- reserve [date] [time] [service] - make a reservation\n" +
		"- check reservations - show your current reservations\n" +
		"- cancel [date] - cancel a reservation\n" +
		"- help - show this help message"
)

// ReserveConfirmation echoes the raw tokens the user typed, not the
// parsed date.
func ReserveConfirmation(date, timeOfDay, service string) string {
	return fmt.Sprintf("Your reservation has been received.\nDate: %s %s\nService: %s", date, timeOfDay, service)
}

// ReservationList renders pending reservations as two-line blocks joined by
// blank lines, prefixed with a header line.
func ReservationList(reservations []*entity.Reservation) string {
	blocks := make([]string, 0, len(reservations))
	for _, res := range reservations {
		blocks = append(blocks, fmt.Sprintf("Date: %s %s\nService: %s", utils.FormatDate(res.Date), res.Time, res.Service))
	}
	return ReservationListHdr + "\n\n" + strings.Join(blocks, "\n\n")
}

// HelpWithServices appends the known service names to the help text when
// the catalog is available.
func HelpWithServices(services []*entity.ServiceCatalogEntry) string {
	if len(services) == 0 {
		return Help
	}
	names := make([]string, 0, len(services))
	for _, svc := range services {
		names = append(names, svc.Name)
	}
	return Help + "\n\nAvailable services: " + strings.Join(names, ", ")
}
