// Command seed wipes and repopulates the database with demo data: one
// admin, five donors, four campaigns, a spread of donations and expenses.
// Intended for local development only.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

const demoPassword = "password123"

type seedUser struct {
	name  string
	email string
	phone string
	role  string
}

type seedCampaign struct {
	title       string
	description string
	target      int64
	imageURL    string
}

func main() {
	_ = godotenv.Load()
	dsn := flag.String("dsn", os.Getenv("DATABASE_URL"), "postgres connection string")
	flag.Parse()
	if *dsn == "" {
		fmt.Fprintln(os.Stderr, "seed: DATABASE_URL or -dsn is required")
		os.Exit(1)
	}

	db, err := sql.Open("postgres", *dsn)
	if err != nil {
		fail(err)
	}
	defer db.Close()

	if err := run(db); err != nil {
		fail(err)
	}
	fmt.Println("seed: done")
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "seed:", err)
	os.Exit(1)
}

func run(db *sql.DB) error {
	if _, err := db.Exec(`truncate expenses, donations, campaigns, users`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []seedUser{
		{name: "Admin User", email: "admin@givehope.local", phone: "9876543210", role: "admin"},
		{name: "Priya Sharma", email: "priya.sharma@example.com", phone: "9898989898", role: "user"},
		{name: "Amit Verma", email: "amit.verma@example.com", phone: "9123456789", role: "user"},
		{name: "Rajesh Kumar", email: "rajesh.kumar@example.com", phone: "9988776655", role: "user"},
		{name: "Sarah Jenkins", email: "sarah.j@example.com", phone: "8877665544", role: "user"},
		{name: "Vikram Malhotra", email: "vikram.m@example.com", phone: "7766554433", role: "user"},
	}
	userIDs := make([]string, 0, len(users))
	for _, u := range users {
		var id string
		err := db.QueryRow(`
insert into users (id, name, email, password_hash, phone, role)
values (gen_random_uuid(), $1, $2, $3, $4, $5)
returning id`, u.name, u.email, string(hash), u.phone, u.role).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert user %s: %w", u.email, err)
		}
		userIDs = append(userIDs, id)
	}

	campaigns := []seedCampaign{
		{title: "Kerala Flood Relief", description: "Food, shelter, and medical aid for families affected by the floods.", target: 500000, imageURL: "https://images.example.com/flood.jpg"},
		{title: "Educate a Girl Child", description: "Tuition fees, books, and uniforms for 100 girls in rural Rajasthan.", target: 200000, imageURL: "https://images.example.com/education.jpg"},
		{title: "Save the Stray Dogs", description: "A new shelter and vaccinations for stray dogs in Mumbai.", target: 150000, imageURL: "https://images.example.com/dogs.jpg"},
		{title: "Clean Water for Bihar", description: "Installing 50 water purifiers in drought-hit villages.", target: 300000, imageURL: "https://images.example.com/water.jpg"},
	}
	campaignIDs := make([]string, 0, len(campaigns))
	for _, c := range campaigns {
		var id string
		err := db.QueryRow(`
insert into campaigns (id, title, description, target_amount, image_url)
values (gen_random_uuid(), $1, $2, $3, $4)
returning id`, c.title, c.description, c.target, c.imageURL).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert campaign %s: %w", c.title, err)
		}
		campaignIDs = append(campaignIDs, id)
	}

	// donors are userIDs[1:]
	donations := []struct {
		user     string
		campaign string
		amount   int64
		status   string
	}{
		{user: userIDs[1], campaign: campaignIDs[0], amount: 150000, status: "success"},
		{user: userIDs[2], campaign: campaignIDs[0], amount: 50000, status: "success"},
		{user: userIDs[3], campaign: campaignIDs[1], amount: 100000, status: "success"},
		{user: userIDs[4], campaign: campaignIDs[2], amount: 25000, status: "success"},
		{user: userIDs[5], campaign: campaignIDs[3], amount: 200000, status: "success"},
		{user: userIDs[1], campaign: campaignIDs[1], amount: 50000, status: "success"},
		{user: userIDs[2], campaign: campaignIDs[2], amount: 1000, status: "pending"},
	}
	for _, d := range donations {
		_, err := db.Exec(`
insert into donations (id, user_id, campaign_id, amount, status)
values (gen_random_uuid(), $1, $2, $3, $4)`, d.user, d.campaign, d.amount, d.status)
		if err != nil {
			return fmt.Errorf("insert donation: %w", err)
		}
		if d.status == "success" {
			if _, err := db.Exec(`update campaigns set raised_amount = raised_amount + $1 where id = $2`, d.amount, d.campaign); err != nil {
				return fmt.Errorf("update raised amount: %w", err)
			}
		}
	}

	expenses := []struct {
		title       string
		amount      int64
		category    string
		date        string
		description string
	}{
		{title: "Relief Kits for Wayanad", amount: 45000, category: "Food", date: "2026-01-10", description: "Rice, dal, and oil packets for 200 families."},
		{title: "Books & Stationery Wholesale", amount: 12000, category: "Education", date: "2026-01-12", description: "Bulk purchase of math and science textbooks."},
		{title: "Dog Shelter Construction Material", amount: 28000, category: "Operational", date: "2026-01-15", description: "Cement and bricks for the new kennel wing."},
		{title: "Water Filter Units (Batch 1)", amount: 150000, category: "Logistics", date: "2026-01-18", description: "Purchase of 20 industrial grade water filters."},
	}
	for _, e := range expenses {
		_, err := db.Exec(`
insert into expenses (id, title, amount, category, spent_at, description)
values (gen_random_uuid(), $1, $2, $3, $4, $5)`, e.title, e.amount, e.category, e.date, e.description)
		if err != nil {
			return fmt.Errorf("insert expense %s: %w", e.title, err)
		}
	}

	return nil
}
