package restaurantcard

import "strings"

func telURL(phone string) string {
	return "tel:" + strings.ReplaceAll(phone, " ", "")
}
