package tier

import "strings"

const Default = "Tier 3"

// Overrides pins well-known companies to a tier so categorization stays
// consistent regardless of what the datastore carries.
var Overrides = map[string]string{
	"Google":              "Tier 1",
	"Microsoft":           "Tier 1",
	"Amazon":              "Tier 1",
	"Meta":                "Tier 1",
	"Apple":               "Tier 1",
	"Netflix":             "Tier 1",
	"Adobe":               "Tier 1",
	"Uber":                "Tier 1",
	"Atlassian":           "Tier 1",
	"Salesforce":          "Tier 1",
	"Goldman Sachs":       "Tier 1",
	"Morgan Stanley":      "Tier 1",
	"J.P. Morgan":         "Tier 1",
	"DE Shaw":             "Tier 1",
	"Tower Research":      "Tier 1",
	"Citadel":             "Tier 1",
	"NVIDIA":              "Tier 1",
	"Intel":               "Tier 1",
	"Qualcomm":            "Tier 1",
	"Samsung":             "Tier 1",
	"Visa":                "Tier 1",
	"Mastercard":          "Tier 1",
	"PayPal":              "Tier 1",
	"Stripe":              "Tier 1",
	"Tesla":               "Tier 1",
	"SpaceX":              "Tier 1",
	"Oracle":              "Tier 1",
	"Cisco":               "Tier 1",
	"Walmart Global Tech": "Tier 1",
	"Target":              "Tier 1",
	"Intuit":              "Tier 1",
	"ServiceNow":          "Tier 1",
	"Zomato":              "Tier 1",
	"Swiggy":              "Tier 1",
	"Ola":                 "Tier 1",
	"Paytm":               "Tier 1",
	"Flipkart":            "Tier 1",
	"Freshworks":          "Tier 1",
	"BrowserStack":        "Tier 1",
	"Postman":             "Tier 1",
	"Razorpay":            "Tier 1",

	"Accenture":                 "Tier 2",
	"TCS":                       "Tier 2",
	"Tata Consultancy Services": "Tier 2",
	"Wipro":                     "Tier 2",
	"Infosys":                   "Tier 2",
	"Cognizant":                 "Tier 2",
	"CTS":                       "Tier 2",
	"Capgemini":                 "Tier 2",
	"HCL":                       "Tier 2",
	"Tech Mahindra":             "Tier 2",
	"LTI":                       "Tier 2",
	"Mindtree":                  "Tier 2",
	"Deloitte":                  "Tier 2",
	"PwC":                       "Tier 2",
	"EY":                        "Tier 2",
	"KPMG":                      "Tier 2",
	"IBM":                       "Tier 2",
	"Oracle Cloud":              "Tier 2",
	"SAP":                       "Tier 2",
	"CGI":                       "Tier 2",
	"Virtusa":                   "Tier 2",
	"Zensar":                    "Tier 2",
	"Persistent Systems":        "Tier 2",
	"Mphasis":                   "Tier 2",
}

// ForCompany resolves a company's tier: exact override first, then substring
// containment in either direction ("Amazon.com" matches "Amazon"), then the
// datastore value, then the default.
func ForCompany(name, dbTier string) string {
	if strings.TrimSpace(name) == "" {
		return fallback(dbTier)
	}

	if t, ok := Overrides[name]; ok {
		return t
	}
	for key, t := range Overrides {
		if strings.Contains(name, key) || strings.Contains(key, name) {
			return t
		}
	}

	return fallback(dbTier)
}

// Normalize maps any casing or phrasing that mentions 1, 2, or 3 onto the
// canonical display form. Unknown non-empty values pass through unchanged.
func Normalize(tier string) string {
	if strings.TrimSpace(tier) == "" {
		return Default
	}
	lower := strings.ToLower(tier)
	switch {
	case strings.Contains(lower, "1"):
		return "Tier 1"
	case strings.Contains(lower, "2"):
		return "Tier 2"
	case strings.Contains(lower, "3"):
		return "Tier 3"
	}
	return tier
}

func fallback(dbTier string) string {
	if strings.TrimSpace(dbTier) == "" {
		return Default
	}
	return dbTier
}
