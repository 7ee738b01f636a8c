package backend

// ProviderKey is the name some backend responses wrap their payload under.
const ProviderKey = "ticketmaster"

// Event is a single event as returned by the search and detail endpoints.
// Every nested field may be absent; zero values stand in for missing data.
type Event struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	URL             string           `json:"url"`
	Images          []Image          `json:"images"`
	Dates           Dates            `json:"dates"`
	Classifications []Classification `json:"classifications"`
	Seatmap         Seatmap          `json:"seatmap"`
	Links           Links            `json:"_links"`
	Embedded        EventEmbedded    `json:"_embedded"`
}

// EventEmbedded holds the venues and attractions attached to an event.
type EventEmbedded struct {
	Venues      []Venue      `json:"venues"`
	Attractions []Attraction `json:"attractions"`
}

type Image struct {
	URL    string `json:"url"`
	Ratio  string `json:"ratio"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type Dates struct {
	Start    EventDate `json:"start"`
	Timezone string    `json:"timezone"`
	Status   Status    `json:"status"`
}

type EventDate struct {
	LocalDate string `json:"localDate"`
	LocalTime string `json:"localTime"`
	DateTime  string `json:"dateTime"`
}

// Status carries the ticket sale status code (onsale, offsale, ...).
type Status struct {
	Code string `json:"code"`
}

// Classification describes one category path of an event.
type Classification struct {
	Primary  bool     `json:"primary"`
	Segment  NamedRef `json:"segment"`
	Genre    NamedRef `json:"genre"`
	SubGenre NamedRef `json:"subGenre"`
	Type     NamedRef `json:"type"`
	SubType  NamedRef `json:"subType"`
}

type NamedRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Seatmap struct {
	StaticURL string `json:"staticUrl"`
}

// Attraction is a performer or team appearing at an event.
type Attraction struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	URL   string  `json:"url"`
	Links Links   `json:"_links"`
	Image []Image `json:"images"`
}

type Links struct {
	Self Href `json:"self"`
}

type Href struct {
	Href string `json:"href"`
}

// Venue is the venue payload from the venue detail endpoint, also embedded
// inside events.
type Venue struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	URL        string   `json:"url"`
	Images     []Image  `json:"images"`
	PostalCode string   `json:"postalCode"`
	City       City     `json:"city"`
	State      State    `json:"state"`
	Country    Country  `json:"country"`
	Address    Address  `json:"address"`
	Location   GeoPoint `json:"location"`
	Links      Links    `json:"_links"`
}

type City struct {
	Name string `json:"name"`
}

type State struct {
	Name      string `json:"name"`
	StateCode string `json:"stateCode"`
}

type Country struct {
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
}

type Address struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
}

// GeoPoint is encoded by the provider as decimal strings.
type GeoPoint struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// Page is the provider's pagination marker. TotalElements is nil when the
// marker does not carry a count.
type Page struct {
	Size          int      `json:"size"`
	TotalElements *float64 `json:"totalElements"`
	TotalPages    int      `json:"totalPages"`
	Number        int      `json:"number"`
}

// Health is the backend /health response.
type Health struct {
	Status string `json:"status"`
}

// OK reports whether the backend declared itself healthy.
func (h Health) OK() bool {
	return h.Status == "ok"
}
