package catalogmatch

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"
)

// Draft is a catalog entry derived from a product image URL.
type Draft struct {
	Name          string
	Category      string
	ImageURL      string
	ImageFilename string
	// URLPrefix is the image URL without its query string, used for duplicate detection.
	URLPrefix string
	Keywords  []string
}

var cardNumberPattern = regexp.MustCompile(`op[-\s]?\d{1,2}[-\s]?\d{3}`)

var importantWords = []string{"mega", "ex", "premium", "elite", "booster", "parallel", "battle deck"}

// DraftFromImageURL derives name, category and keywords from the file name
// at the end of an image URL such as
// https://cdn.example/items/Mega%20Battle%20Deck%20(Mega%20Diancie%20ex).jpg?updatedAt=1
func DraftFromImageURL(imageURL string) (Draft, error) {
	raw := strings.TrimSpace(imageURL)
	if raw == "" {
		return Draft{}, fmt.Errorf("image url is empty")
	}
	prefix, _, _ := strings.Cut(raw, "?")
	encoded := path.Base(prefix)
	if encoded == "" || encoded == "." || encoded == "/" {
		return Draft{}, fmt.Errorf("image url %q has no file name", imageURL)
	}
	filename, err := url.PathUnescape(encoded)
	if err != nil {
		return Draft{}, fmt.Errorf("image url %q has a malformed file name: %w", imageURL, err)
	}

	name := filename
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	name = strings.ReplaceAll(name, "_s", "'s")
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.TrimSpace(name)
	if name == "" {
		return Draft{}, fmt.Errorf("image url %q yields an empty product name", imageURL)
	}

	category := CategorizeProduct(name)
	return Draft{
		Name:          name,
		Category:      category,
		ImageURL:      raw,
		ImageFilename: filename,
		URLPrefix:     prefix,
		Keywords:      GenerateKeywords(name, category),
	}, nil
}

// CategorizeProduct picks a category from well-known product type phrases.
func CategorizeProduct(name string) string {
	lower := strings.ToLower(name)
	has := func(s string) bool { return strings.Contains(lower, s) }
	switch {
	case has("ultra premium") || has("upc"):
		return "UPC"
	case has("elite trainer box") || has("etb"):
		return "ETB"
	case has("booster bundle"):
		return "Booster Bundle"
	case has("booster box"):
		return "Booster Box"
	case has("battle deck"):
		return "Battle Deck"
	case has("premium collection") || has("premium figure"):
		return "Premium Collection"
	case has("blister"):
		return "3 Pack Blister"
	case has("tin"):
		return "Tin"
	case has("sleeved") || (has("sleeve") && has("pack")):
		return "Sleeved Packs"
	case strings.Contains(name, "(") && strings.Contains(name, ")"):
		return "Singles"
	case has("box"):
		return "Box"
	default:
		return "Other"
	}
}

// GenerateKeywords builds the include keywords for a derived entry: the full
// lower-cased name, card numbers and their spacing variants, notable words,
// and the category's product type phrases. Duplicates are dropped while the
// first occurrence order is kept.
func GenerateKeywords(name, category string) []string {
	lower := strings.ToLower(name)
	keywords := []string{lower}
	for _, num := range cardNumberPattern.FindAllString(lower, -1) {
		keywords = append(keywords, num, strings.ReplaceAll(num, "-", ""), strings.ReplaceAll(num, "-", " "))
	}
	for _, w := range importantWords {
		if strings.Contains(lower, w) {
			keywords = append(keywords, w)
		}
	}
	switch category {
	case "ETB":
		keywords = append(keywords, "elite trainer box", "etb")
	case "Booster Bundle":
		keywords = append(keywords, "booster bundle")
	case "UPC":
		keywords = append(keywords, "ultra premium", "upc")
	case "Battle Deck":
		keywords = append(keywords, "battle deck")
	}

	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
