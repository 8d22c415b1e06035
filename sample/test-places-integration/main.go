package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/vflorencio/radar-leads/internal/infra/integration/places"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  Aviso: arquivo .env não encontrado, usando variáveis de ambiente do sistema")
	}

	apiKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if apiKey == "" {
		log.Fatal("❌ GOOGLE_MAPS_API_KEY deve estar configurado no .env")
	}

	query := "padaria em pinheiros sao paulo"
	if len(os.Args) > 1 {
		query = os.Args[1]
	}

	client := places.NewClient()

	fmt.Println("🔄 Buscando no Google Places...")
	fmt.Printf("📋 Query: %s\n\n", query)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	businesses, err := client.Search(ctx, places.SearchInput{
		Query:    query,
		APIKey:   apiKey,
		Lat:      -23.5505,
		Lng:      -46.6333,
		RadiusKm: 10,
	})
	if err != nil {
		log.Fatalf("Erro na busca do Places: %v", err)
	}

	fmt.Printf("Busca concluída! %d resultados\n\n", len(businesses))
	for i, b := range businesses {
		fmt.Printf("%d. %s\n", i+1, b.Name)
		fmt.Printf("   Endereço: %s\n", b.Address)
		fmt.Printf("   Nota: %.1f (%d avaliações)\n", b.Rating, b.ReviewCount)
		if b.Phone != "" {
			fmt.Printf("   Telefone: %s\n", b.Phone)
		}
		if b.Website != "" {
			fmt.Printf("   Site: %s\n", b.Website)
		}
		fmt.Println()
	}
}
