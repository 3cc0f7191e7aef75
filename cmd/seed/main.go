package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"booksapi/internal/book"
	"booksapi/internal/config"
	"booksapi/internal/platform/postgres"
)

func main() {
	count := flag.Int("count", 25, "Number of books to generate")
	flag.Parse()

	config.LoadEnvFiles()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.Open(ctx, postgres.Config{DSN: cfg.DatabaseDSN})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	repo := book.NewPostgresRepo(pool, cfg.DBQueryTimeout)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	log.Printf("Generating %d books...", *count)
	inserted, skipped, err := seed(ctx, repo, generateBooks(rng, *count))
	if err != nil {
		log.Fatalf("Failed to insert books: %v", err)
	}
	log.Printf("Inserted %d books, skipped %d existing", inserted, skipped)
}

// seed creates every book, counting duplicates instead of failing on them.
func seed(ctx context.Context, repo book.Repository, books []book.Book) (inserted, skipped int, err error) {
	for _, b := range books {
		if _, err := repo.Create(ctx, b); err != nil {
			if errors.Is(err, book.ErrConflict) {
				skipped++
				continue
			}
			return inserted, skipped, fmt.Errorf("create %s: %w", b.ISBN, err)
		}
		inserted++
	}
	return inserted, skipped, nil
}

func generateBooks(rng *rand.Rand, count int) []book.Book {
	languages := []string{"english", "spanish", "french", "german", "italian", "portuguese"}
	publishers := []string{"Penguin", "HarperCollins", "Oxford", "Cambridge", "MIT Press", "Springer", "Wiley"}
	authors := []string{"A. Writer", "B. Novelist", "C. Essayist", "D. Poet", "E. Historian"}

	books := make([]book.Book, 0, count)
	for i := 0; i < count; i++ {
		isbn := fmt.Sprintf("978%010d", i+1)
		books = append(books, book.Book{
			ISBN:      isbn,
			AmazonURL: "https://www.amazon.com/dp/" + isbn[3:],
			Author:    authors[rng.Intn(len(authors))],
			Language:  languages[rng.Intn(len(languages))],
			Pages:     100 + rng.Intn(800),
			Publisher: publishers[rng.Intn(len(publishers))],
			Title:     fmt.Sprintf("Book Title %d - %s", i+1, randomWord(rng)),
			Year:      1950 + rng.Intn(75),
		})
	}
	return books
}

func randomWord(rng *rand.Rand) string {
	words := []string{
		"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
		"Love", "War", "Peace", "Science", "Nature", "Technology", "History", "Future",
		"Past", "Present", "Reality", "Imagination", "Wisdom", "Life", "Death",
		"Light", "Darkness", "World", "Universe", "Time", "Space", "Mind", "Soul",
	}
	return words[rng.Intn(len(words))]
}
