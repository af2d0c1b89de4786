package service

import (
	"encoding/json"
	"os"

	"campportal/internal/utils"

	"github.com/rs/zerolog/log"
)

// Item describes a shop item as shown in the portal inventory.
type Item struct {
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}

// God is one entry of the public gods list.
type God struct {
	Emoji  string `json:"emoji"`
	Domain string `json:"domain"`
}

type CatalogServiceConfig struct {
	CatalogFile string
}

// CatalogService is a fixed lookup table for item metadata and the gods
// list. Built-in defaults are replaced wholesale by an optional JSON
// file read once at startup.
type CatalogService struct {
	Config CatalogServiceConfig
	items  map[string]Item
	gods   map[string]God
}

type catalogFile struct {
	Items map[string]Item `json:"items"`
	Gods  map[string]God  `json:"gods"`
}

func NewCatalogService(config CatalogServiceConfig) *CatalogService {
	return &CatalogService{
		Config: config,
	}
}

func (catalog *CatalogService) Init() error {
	catalog.items = map[string]Item{}
	catalog.gods = defaultGods()

	if catalog.Config.CatalogFile == "" {
		return nil
	}

	contents, err := os.ReadFile(catalog.Config.CatalogFile)
	if err != nil {
		return err
	}

	var file catalogFile
	if err := json.Unmarshal(contents, &file); err != nil {
		return err
	}

	if len(file.Items) > 0 {
		catalog.items = file.Items
	}

	if len(file.Gods) > 0 {
		catalog.gods = file.Gods
	}

	log.Info().Str("file", catalog.Config.CatalogFile).Int("items", len(catalog.items)).Int("gods", len(catalog.gods)).Msg("Loaded catalog")
	return nil
}

// Item resolves metadata for an item id. Unknown items get a readable
// name derived from the id and a generic emoji.
func (catalog *CatalogService) Item(itemID string) Item {
	if item, ok := catalog.items[itemID]; ok {
		return item
	}

	return Item{
		Name:  utils.DisplayName(itemID),
		Emoji: "📦",
	}
}

func (catalog *CatalogService) Gods() map[string]God {
	return catalog.gods
}

func defaultGods() map[string]God {
	return map[string]God{
		"Zeus":       {Emoji: "⚡", Domain: "Sky, Thunder"},
		"Poseidon":   {Emoji: "🔱", Domain: "Sea, Earthquakes"},
		"Hades":      {Emoji: "💀", Domain: "Underworld"},
		"Athena":     {Emoji: "🦉", Domain: "Wisdom, Warfare"},
		"Apollo":     {Emoji: "☀️", Domain: "Sun, Music"},
		"Artemis":    {Emoji: "🏹", Domain: "Hunt, Moon"},
		"Ares":       {Emoji: "⚔️", Domain: "War"},
		"Aphrodite":  {Emoji: "💕", Domain: "Love, Beauty"},
		"Hephaestus": {Emoji: "🔨", Domain: "Fire, Forge"},
		"Hermes":     {Emoji: "👟", Domain: "Travel, Thieves"},
		"Demeter":    {Emoji: "🌾", Domain: "Agriculture"},
		"Dionysus":   {Emoji: "🍇", Domain: "Wine, Festivity"},
	}
}
