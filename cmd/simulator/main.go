package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Global flags
	apiURL := "http://localhost:8080"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "seed":
		seedCmd(apiURL, args)
	case "book":
		bookCmd(apiURL, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Booking Simulator - Development tool for exercising the courier API

USAGE:
  simulator <command> [options]

COMMANDS:
  seed   Register fake users and create bookings for each
  book   Create bookings for an existing account
  help   Show this help message

ENVIRONMENT:
  API_URL   Backend API URL (default: http://localhost:8080)

EXAMPLES:
  # Register 5 users with 3 bookings each
  simulator seed --users=5 --bookings=3

  # Create 10 bookings on an existing account
  simulator book --email=a@x.com --password=secret1 --count=10`)
}

func seedCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	userCount := fs.Int("users", 5, "number of users to register")
	bookingCount := fs.Int("bookings", 3, "bookings per user")
	fs.Parse(args)

	client := NewAPIClient(apiURL)

	for i := 0; i < *userCount; i++ {
		user, token, err := client.RegisterUser(fmt.Sprintf("SimUser%d", i+1))
		if err != nil {
			fmt.Printf("failed to register user %d: %v\n", i+1, err)
			os.Exit(1)
		}
		fmt.Printf("registered %s (%s)\n", user.FullName, user.Email)

		for j := 0; j < *bookingCount; j++ {
			booking, err := client.CreateBooking(token, "Chennai", "Bengaluru", vehicleFor(j))
			if err != nil {
				fmt.Printf("failed to create booking: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("  booking %s -> %s\n", booking.TrackingCode, booking.Status)
		}
	}

	fmt.Printf("\nDone: %d users, %d bookings each\n", *userCount, *bookingCount)
}

func bookCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	email := fs.String("email", "", "account email (required)")
	password := fs.String("password", "", "account password (required)")
	count := fs.Int("count", 1, "number of bookings to create")
	fs.Parse(args)

	if *email == "" || *password == "" {
		fmt.Println("--email and --password are required")
		os.Exit(1)
	}

	client := NewAPIClient(apiURL)

	user, token, err := client.Login(*email, *password)
	if err != nil {
		fmt.Printf("login failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("logged in as %s\n", user.Email)

	for i := 0; i < *count; i++ {
		booking, err := client.CreateBooking(token, "Chennai", "Bengaluru", vehicleFor(i))
		if err != nil {
			fmt.Printf("failed to create booking: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("booking %s -> %s\n", booking.TrackingCode, booking.Status)
	}

	bookings, err := client.ListBookings(token)
	if err != nil {
		fmt.Printf("failed to list bookings: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\naccount now has %d bookings\n", len(bookings))
}

func vehicleFor(i int) string {
	vehicles := []string{"Bike", "Mini Truck", "Van"}
	return vehicles[i%len(vehicles)]
}
