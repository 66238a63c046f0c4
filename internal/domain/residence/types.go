package residence

type Type string

const (
	TypeHotel     Type = "hotel"
	TypeApartment Type = "apartment"
	TypeVilla     Type = "villa"
	TypeStudio    Type = "studio"
	TypeSuite     Type = "suite"
	TypeRoom      Type = "room"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeHotel, TypeApartment, TypeVilla, TypeStudio, TypeSuite, TypeRoom:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusMaintenance:
		return true
	default:
		return false
	}
}

type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

func (k MediaKind) IsValid() bool {
	return k == MediaImage || k == MediaVideo
}

// Media is one entry of a residence's ordered media list.
type Media struct {
	URL  string
	Kind MediaKind
}
