package domain

// Ward is a geographic administrative subdivision used to scope complaints.
type Ward struct {
	ID     int64
	Name   string
	Active bool
}

// Category classifies a complaint (pothole, water supply, waste, ...).
type Category struct {
	ID     int64
	Name   string
	Active bool
}

// Department is a municipal unit a complaint can be assigned to.
type Department struct {
	ID   int64
	Name string
}
