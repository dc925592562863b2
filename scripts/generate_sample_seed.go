package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"restaurant-api/internal/model"
)

// Generates a small menu seed file for local development. Run once and
// point SEED_FILE at the output.
func main() {
	dataDir := "data"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("failed to create data directory: %v", err)
	}

	items := []model.FoodRequest{
		{Name: "Dragon Noodles", Category: "Noodles", Price: 12.50, Description: "Stir-fried noodles with chili oil", Image: "https://example.com/img/dragon-noodles.jpg", Origin: "China", Quantity: 40, OwnerEmail: "kitchen@example.com", OwnerName: "House Kitchen"},
		{Name: "Miso Ramen", Category: "Soup", Price: 11.00, Description: "Rich miso broth with soft egg", Image: "https://example.com/img/miso-ramen.jpg", Origin: "Japan", Quantity: 25, OwnerEmail: "kitchen@example.com", OwnerName: "House Kitchen"},
		{Name: "Paneer Tikka", Category: "Grill", Price: 9.75, Description: "Char-grilled cottage cheese skewers", Image: "https://example.com/img/paneer-tikka.jpg", Origin: "India", Quantity: 30, OwnerEmail: "kitchen@example.com", OwnerName: "House Kitchen"},
		{Name: "Pad Thai", Category: "Noodles", Price: 10.25, Description: "Tamarind rice noodles with peanuts", Image: "https://example.com/img/pad-thai.jpg", Origin: "Thailand", Quantity: 35, OwnerEmail: "kitchen@example.com", OwnerName: "House Kitchen"},
		{Name: "Beef Pho", Category: "Soup", Price: 13.00, Description: "Slow-simmered beef broth and herbs", Image: "https://example.com/img/beef-pho.jpg", Origin: "Vietnam", Quantity: 20, OwnerEmail: "kitchen@example.com", OwnerName: "House Kitchen"},
		{Name: "Falafel Wrap", Category: "Wraps", Price: 8.50, Description: "Crispy falafel with tahini sauce", Image: "https://example.com/img/falafel-wrap.jpg", Origin: "Lebanon", Quantity: 50, OwnerEmail: "kitchen@example.com", OwnerName: "House Kitchen"},
	}

	outPath := filepath.Join(dataDir, "foods.json")
	file, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("failed to create seed file: %v", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		log.Fatalf("failed to write seed file: %v", err)
	}

	fmt.Printf("wrote %d menu items to %s\n", len(items), outPath)
}
