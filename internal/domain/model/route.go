package model

// Logical navigation targets understood by the dashboard client.
const (
	RouteOverview = "/dashboard"
	RouteTracker  = "/questions"
	RouteSheets   = "/sheets"
	RouteContests = "/contests"
)

func SheetDetailRoute(sheetID string) string {
	return RouteSheets + "/" + sheetID
}

type Navigation struct {
	Overview string `json:"overview"`
	Tracker  string `json:"tracker"`
	Sheets   string `json:"sheets"`
	Contests string `json:"contests"`
}

func DefaultNavigation() Navigation {
	return Navigation{
		Overview: RouteOverview,
		Tracker:  RouteTracker,
		Sheets:   RouteSheets,
		Contests: RouteContests,
	}
}
