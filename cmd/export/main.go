package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/wineworld/wineworld-backend/config"
	"github.com/wineworld/wineworld-backend/internal/app/model"
	"github.com/wineworld/wineworld-backend/internal/app/repository"
	"github.com/wineworld/wineworld-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

// Exports the stored catalog to an XLSX workbook, one sheet per entity kind.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	outPath := fmt.Sprintf("catalog_export_%s.xlsx", time.Now().Format("20060102_150405"))
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	wines, err := repository.NewWineRepository(db.GetDB()).FindAll()
	if err != nil {
		log.Fatal("Failed to load wines:", err)
	}
	regions, err := repository.NewRegionRepository(db.GetDB()).FindAll()
	if err != nil {
		log.Fatal("Failed to load regions:", err)
	}
	vineyards, err := repository.NewVineyardRepository(db.GetDB()).FindAll()
	if err != nil {
		log.Fatal("Failed to load vineyards:", err)
	}
	posts, err := repository.NewPostRepository(db.GetDB()).FindAll()
	if err != nil {
		log.Fatal("Failed to load posts:", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeWineSheet(f, wines); err != nil {
		log.Fatal("Failed to write wine sheet:", err)
	}
	if err := writeRegionSheet(f, regions); err != nil {
		log.Fatal("Failed to write region sheet:", err)
	}
	if err := writeVineyardSheet(f, vineyards); err != nil {
		log.Fatal("Failed to write vineyard sheet:", err)
	}
	if err := writePostSheet(f, posts); err != nil {
		log.Fatal("Failed to write post sheet:", err)
	}

	// Drop the default sheet created by NewFile.
	f.DeleteSheet("Sheet1")

	if err := f.SaveAs(outPath); err != nil {
		log.Fatal("Failed to save workbook:", err)
	}

	fmt.Printf("Exported %d wines, %d regions, %d vineyards, %d post groups to %s\n",
		len(wines), len(regions), len(vineyards), len(posts), outPath)
}

func writeWineSheet(f *excelize.File, wines []*model.Wine) error {
	const sheet = "Wines"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	header := []interface{}{"ID", "Name", "Country", "Region", "Winery", "Rating", "Reviews", "Type", "Image"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, wine := range wines {
		row := []interface{}{
			wine.ID, wine.Name, wine.Country, wine.Region, wine.Winery,
			wine.Rating, wine.Reviews, wine.Type, wine.Image,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeRegionSheet(f *excelize.File, regions []*model.Region) error {
	const sheet = "Regions"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	header := []interface{}{"ID", "Name", "Country", "Rating", "Reviews", "Longitude", "Latitude", "URL", "Tags", "TripTypes"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, region := range regions {
		row := []interface{}{
			region.ID, region.Name, region.Country, region.Rating, region.Reviews,
			region.Longitude, region.Latitude, region.URL,
			strings.Join(region.Tags, ", "), strings.Join(region.TripTypes, ", "),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeVineyardSheet(f *excelize.File, vineyards []*model.Vineyard) error {
	const sheet = "Vineyards"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	header := []interface{}{"ID", "Name", "Country", "Price", "Rating", "Reviews", "URL", "Longitude", "Latitude", "Regions"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, vineyard := range vineyards {
		row := []interface{}{
			vineyard.ID, vineyard.Name, vineyard.Country, vineyard.Price,
			vineyard.Rating, vineyard.Reviews, vineyard.URL,
			vineyard.Longitude, vineyard.Latitude,
			strings.Join(vineyard.RegionNames, ", "),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writePostSheet(f *excelize.File, posts []*model.Post) error {
	const sheet = "Posts"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	header := []interface{}{"WineType", "URLCount", "URLs"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, post := range posts {
		row := []interface{}{
			post.WineType, len(post.URLs), strings.Join(post.URLs, "\n"),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
