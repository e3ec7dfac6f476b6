package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/wineworld/wineworld-backend/config"
	"github.com/wineworld/wineworld-backend/internal/app/catalog"
	"github.com/wineworld/wineworld-backend/internal/app/model"
	"github.com/wineworld/wineworld-backend/internal/app/repository"
	"github.com/wineworld/wineworld-backend/internal/db"
)

const batchSize = 1000

// Seeds the database from the raw scraped JSON files. The association graph
// is built once before anything is persisted, so a wine that resolves to no
// region aborts the import instead of landing in the store.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	dataDir := cfg.Catalog.DataDir
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	fmt.Printf("Reading source data from: %s\n", dataDir)

	posts, err := readPosts(filepath.Join(dataDir, "wine_reddit.json"))
	if err != nil {
		log.Fatal("Failed to read posts:", err)
	}
	wines, err := readWines(filepath.Join(dataDir, "wines.json"))
	if err != nil {
		log.Fatal("Failed to read wines:", err)
	}
	regions, err := readRegions(filepath.Join(dataDir, "regions.json"))
	if err != nil {
		log.Fatal("Failed to read regions:", err)
	}
	vineyards, err := readVineyards(filepath.Join(dataDir, "vineyards.json"))
	if err != nil {
		log.Fatal("Failed to read vineyards:", err)
	}

	fmt.Printf("Loaded %d posts, %d wines, %d regions, %d vineyards\n",
		len(posts), len(wines), len(regions), len(vineyards))

	// Validation build: fail fast before touching the store.
	if _, err := catalog.Build(posts, wines, regions, vineyards); err != nil {
		log.Fatal("Source data fails association build: ", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	if err := repository.NewPostRepository(db.GetDB()).ReplaceAll(posts, batchSize); err != nil {
		log.Fatal("Failed to import posts:", err)
	}
	if err := repository.NewWineRepository(db.GetDB()).ReplaceAll(wines, batchSize); err != nil {
		log.Fatal("Failed to import wines:", err)
	}
	if err := repository.NewRegionRepository(db.GetDB()).ReplaceAll(regions, batchSize); err != nil {
		log.Fatal("Failed to import regions:", err)
	}
	if err := repository.NewVineyardRepository(db.GetDB()).ReplaceAll(vineyards, batchSize); err != nil {
		log.Fatal("Failed to import vineyards:", err)
	}

	fmt.Println("Import completed successfully!")
}

func readPosts(path string) ([]*model.Post, error) {
	var file struct {
		Data map[string][]string `json:"data"`
	}
	if err := readJSON(path, &file); err != nil {
		return nil, err
	}

	// Map iteration order is random; sort wine types for deterministic ids.
	wineTypes := make([]string, 0, len(file.Data))
	for wineType := range file.Data {
		wineTypes = append(wineTypes, wineType)
	}
	sort.Strings(wineTypes)

	posts := make([]*model.Post, 0, len(wineTypes))
	for _, wineType := range wineTypes {
		posts = append(posts, &model.Post{
			WineType: wineType,
			URLs:     file.Data[wineType],
		})
	}
	return posts, nil
}

func readWines(path string) ([]*model.Wine, error) {
	var file struct {
		Data []struct {
			Name    string  `json:"name"`
			Country string  `json:"country"`
			Region  string  `json:"region"`
			Winery  string  `json:"winery"`
			Rating  float64 `json:"rating"`
			Reviews int     `json:"reviews"`
			Type    string  `json:"type"`
			Image   string  `json:"image"`
		} `json:"data"`
	}
	if err := readJSON(path, &file); err != nil {
		return nil, err
	}

	wines := make([]*model.Wine, 0, len(file.Data))
	for _, record := range file.Data {
		wines = append(wines, &model.Wine{
			Name:    record.Name,
			Country: record.Country,
			Region:  record.Region,
			Winery:  record.Winery,
			Rating:  record.Rating,
			Reviews: record.Reviews,
			Type:    record.Type,
			Image:   record.Image,
		})
	}
	return wines, nil
}

func readRegions(path string) ([]*model.Region, error) {
	var file struct {
		Data []struct {
			Name        string   `json:"name"`
			Country     string   `json:"country"`
			Rating      float64  `json:"rating"`
			Reviews     int      `json:"reviews"`
			Longitude   float64  `json:"longitude"`
			Latitude    float64  `json:"latitude"`
			URL         string   `json:"url"`
			Image       string   `json:"image"`
			ImageWidth  float64  `json:"imageWidth"`
			ImageHeight float64  `json:"imageHeight"`
			Tags        []string `json:"tags"`
			TripTypes   []string `json:"tripTypes"`
		} `json:"data"`
	}
	if err := readJSON(path, &file); err != nil {
		return nil, err
	}

	regions := make([]*model.Region, 0, len(file.Data))
	for _, record := range file.Data {
		regions = append(regions, &model.Region{
			Name:        record.Name,
			Country:     record.Country,
			Rating:      record.Rating,
			Reviews:     record.Reviews,
			Longitude:   record.Longitude,
			Latitude:    record.Latitude,
			URL:         record.URL,
			Image:       record.Image,
			ImageWidth:  int(record.ImageWidth),
			ImageHeight: int(record.ImageHeight),
			Tags:        record.Tags,
			TripTypes:   record.TripTypes,
		})
	}
	return regions, nil
}

func readVineyards(path string) ([]*model.Vineyard, error) {
	var file struct {
		Data []struct {
			Name      string   `json:"name"`
			Country   string   `json:"country"`
			Price     int      `json:"price"`
			Rating    float64  `json:"rating"`
			Reviews   int      `json:"reviews"`
			Image     string   `json:"image"`
			URL       string   `json:"url"`
			Longitude float64  `json:"longitude"`
			Latitude  float64  `json:"latitude"`
			Regions   []string `json:"regions"`
		} `json:"data"`
	}
	if err := readJSON(path, &file); err != nil {
		return nil, err
	}

	vineyards := make([]*model.Vineyard, 0, len(file.Data))
	for _, record := range file.Data {
		vineyards = append(vineyards, &model.Vineyard{
			Name:        record.Name,
			Country:     record.Country,
			Price:       record.Price,
			Rating:      record.Rating,
			Reviews:     record.Reviews,
			Image:       record.Image,
			URL:         record.URL,
			Longitude:   record.Longitude,
			Latitude:    record.Latitude,
			RegionNames: record.Regions,
		})
	}
	return vineyards, nil
}

func readJSON(path string, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
