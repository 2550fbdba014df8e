package hero

const (
	Title    = "S.U.P.R.A."
	Subtitle = "Search Utility for Personalized Restaurant Analytics"
	Tagline  = `"Craving Something Delicious? Let S.U.P.R.A. Guide You."`
)

// Features are the pills under the intro text.
var Features = []string{"Dish-Based Search", "Location-Smart", "AI-Powered"}
