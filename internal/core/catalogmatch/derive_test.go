package catalogmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftFromImageURL(t *testing.T) {
	d, err := DraftFromImageURL("https://ik.imagekit.io/shop/Item%20Pics/Mega%20Battle%20Deck%20(Mega%20Diancie%20ex).jpg?updatedAt=1768894216143")
	require.NoError(t, err)

	assert.Equal(t, "Mega Battle Deck (Mega Diancie ex)", d.Name)
	assert.Equal(t, "Mega Battle Deck (Mega Diancie ex).jpg", d.ImageFilename)
	assert.Equal(t, "https://ik.imagekit.io/shop/Item%20Pics/Mega%20Battle%20Deck%20(Mega%20Diancie%20ex).jpg", d.URLPrefix)
	assert.Equal(t, "Battle Deck", d.Category)
	assert.Equal(t, []string{"mega battle deck (mega diancie ex)", "mega", "ex", "battle deck"}, d.Keywords)
}

func TestDraftFromImageURL_Underscores(t *testing.T) {
	d, err := DraftFromImageURL("https://cdn.example.com/items/Ash_s_Pikachu.png")
	require.NoError(t, err)
	assert.Equal(t, "Ash's Pikachu", d.Name)
	assert.Equal(t, "Other", d.Category)
}

func TestDraftFromImageURL_Errors(t *testing.T) {
	_, err := DraftFromImageURL("   ")
	assert.Error(t, err)

	_, err = DraftFromImageURL("https://cdn.example.com/bad%zzname.jpg")
	assert.Error(t, err)
}

func TestCategorizeProduct(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"151 Ultra Premium Collection", "UPC"},
		{"Surging Sparks Elite Trainer Box", "ETB"},
		{"Prismatic Evolutions Booster Bundle", "Booster Bundle"},
		{"OP14 Booster Box", "Booster Box"},
		{"Mega Battle Deck (Mega Diancie ex)", "Battle Deck"},
		{"Armarouge ex Premium Collection", "Premium Collection"},
		{"Phantasmal Flames 3 Pack Blister", "3 Pack Blister"},
		{"Pokeball Tin", "Tin"},
		{"Sleeved Booster Pack", "Sleeved Packs"},
		{"Monkey.D.Luffy (118) (Parallel)", "Singles"},
		{"Collector Box", "Box"},
		{"Playmat", "Other"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CategorizeProduct(tt.name), tt.name)
	}
}

func TestGenerateKeywords_CardNumbers(t *testing.T) {
	got := GenerateKeywords("Luffy OP13-118 Parallel", "Singles")
	assert.Equal(t, []string{"luffy op13-118 parallel", "op13-118", "op13118", "op13 118", "parallel"}, got)
}

func TestGenerateKeywords_Category(t *testing.T) {
	got := GenerateKeywords("151 ETB", "ETB")
	assert.Equal(t, []string{"151 etb", "elite trainer box", "etb"}, got)
}
