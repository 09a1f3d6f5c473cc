package services

import (
	"gorm.io/gorm"
)

// PageYear is the generation year stamped on every itinerary page.
const PageYear = 2025

const (
	includesTitle = "What's Included"
	excludesTitle = "What's Not Included"
)

// ItineraryPage is the document the public itinerary template consumes.
type ItineraryPage struct {
	Data        PageData `json:"data"`
	CurrentYear int      `json:"current_year"`
	FlightCount int      `json:"flight_count"`
}

type PageData struct {
	Client    ClientInfo            `json:"client"`
	Hotels    []HotelInfo           `json:"hotels"`
	Flights   map[string]FlightInfo `json:"flights"`
	Itinerary []DayInfo             `json:"itinerary"`
	Video     *VideoInfo            `json:"video"`
	Includes  *PackageSection       `json:"includes"`
	Excludes  *PackageSection       `json:"excludes"`
	WhatsApp  *WhatsAppInfo         `json:"whatsapp"`
}

type ClientInfo struct {
	Name        string `json:"name"`
	Destination string `json:"destination"`
	Dates       string `json:"dates"`
	Guests      string `json:"guests"`
}

type HotelInfo struct {
	Name     string `json:"name"`
	Image    string `json:"image"`
	Nights   string `json:"nights"`
	RoomType string `json:"roomType"`
	Stars    int    `json:"stars"`
	MapURL   string `json:"mapUrl"`
}

type FlightInfo struct {
	From         string `json:"from"`
	To           string `json:"to"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Airline      string `json:"airline"`
	FlightNumber string `json:"flightNumber"`
	Cabin        string `json:"cabin"`
}

type DayInfo struct {
	Day         int          `json:"day"`
	Icon        string       `json:"icon"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Details     []DetailInfo `json:"details"`
}

type DetailInfo struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
}

type VideoInfo struct {
	Title    string `json:"title"`
	LocalSrc string `json:"localSrc"`
}

type PackageSection struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

type WhatsAppInfo struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// PageService assembles the public itinerary document. Pure read: nothing
// here mutates the store.
type PageService struct {
	DB        *gorm.DB
	Customers *CustomerService
	Hotels    *HotelService
	Flights   *FlightService
	Itinerary *ItineraryService
	Extras    *ExtrasService
}

func NewPageService(db *gorm.DB) *PageService {
	return &PageService{
		DB:        db,
		Customers: NewCustomerService(db),
		Hotels:    NewHotelService(db),
		Flights:   NewFlightService(db),
		Itinerary: NewItineraryService(db),
		Extras:    NewExtrasService(db),
	}
}

// BuildPage resolves a slug to the full page document, or ErrNotFound.
func (s *PageService) BuildPage(slug string) (ItineraryPage, error) {
	customer, err := s.Customers.GetBySlug(slug)
	if err != nil {
		return ItineraryPage{}, err
	}

	hotels, err := s.Hotels.ListByCustomer(customer.ID)
	if err != nil {
		return ItineraryPage{}, err
	}
	hotelInfos := make([]HotelInfo, 0, len(hotels))
	for _, h := range hotels {
		hotelInfos = append(hotelInfos, HotelInfo{
			Name:     h.Name,
			Image:    h.Image,
			Nights:   h.Nights,
			RoomType: h.RoomType,
			Stars:    h.Stars,
			MapURL:   h.MapURL,
		})
	}

	flights, err := s.Flights.ListByCustomer(customer.ID)
	if err != nil {
		return ItineraryPage{}, err
	}
	// Keyed by role: a duplicate role overwrites, so the last row under
	// date,time ordering wins. Matches the existing page behavior.
	flightMap := make(map[string]FlightInfo, len(flights))
	for _, f := range flights {
		flightMap[f.Role] = FlightInfo{
			From:         f.FromLocation,
			To:           f.ToLocation,
			Date:         f.Date,
			Time:         f.Time,
			Airline:      f.Airline,
			FlightNumber: f.FlightNumber,
			Cabin:        f.Cabin,
		}
	}

	days, err := s.Itinerary.ListByCustomer(customer.ID)
	if err != nil {
		return ItineraryPage{}, err
	}
	dayInfos := make([]DayInfo, 0, len(days))
	for _, d := range days {
		details := make([]DetailInfo, 0, len(d.Details))
		for _, det := range d.Details {
			details = append(details, DetailInfo{Time: det.Time, Activity: det.Activity})
		}
		dayInfos = append(dayInfos, DayInfo{
			Day:         d.Day,
			Icon:        d.Icon,
			Title:       d.Title,
			Description: d.Description,
			Details:     details,
		})
	}

	var videoInfo *VideoInfo
	video, err := s.Extras.GetVideo(customer.ID)
	if err != nil {
		return ItineraryPage{}, err
	}
	if video != nil {
		videoInfo = &VideoInfo{Title: video.Title, LocalSrc: video.LocalSrc}
	}

	includes, err := s.packageSection(customer.ID, true)
	if err != nil {
		return ItineraryPage{}, err
	}
	excludes, err := s.packageSection(customer.ID, false)
	if err != nil {
		return ItineraryPage{}, err
	}

	var whatsappInfo *WhatsAppInfo
	whatsapp, err := s.Extras.GetWhatsApp(customer.ID)
	if err != nil {
		return ItineraryPage{}, err
	}
	if whatsapp != nil {
		whatsappInfo = &WhatsAppInfo{Phone: whatsapp.Phone, Message: whatsapp.Message}
	}

	return ItineraryPage{
		Data: PageData{
			Client: ClientInfo{
				Name:        customer.Name,
				Destination: customer.Destination,
				Dates:       customer.Dates,
				Guests:      customer.Guests,
			},
			Hotels:    hotelInfos,
			Flights:   flightMap,
			Itinerary: dayInfos,
			Video:     videoInfo,
			Includes:  includes,
			Excludes:  excludes,
			WhatsApp:  whatsappInfo,
		},
		CurrentYear: PageYear,
		FlightCount: len(flightMap),
	}, nil
}

// packageSection returns nil when the customer has no rows: the page shows
// the section only when it has content.
func (s *PageService) packageSection(customerID uint, inclusions bool) (*PackageSection, error) {
	var (
		items []string
		title string
	)
	if inclusions {
		rows, err := s.Extras.ListInclusions(customerID)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			items = append(items, r.Item)
		}
		title = includesTitle
	} else {
		rows, err := s.Extras.ListExclusions(customerID)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			items = append(items, r.Item)
		}
		title = excludesTitle
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &PackageSection{Title: title, Items: items}, nil
}
