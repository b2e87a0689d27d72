package dataset

import "github.com/shopspring/decimal"

// FirstProductID is the id given to the first catalog entry.
const FirstProductID = 2000

// Products returns the fixed peripherals catalog with sequential ids.
func Products() []Product {
	var out []Product
	nextID := FirstProductID
	add := func(name string, price, margin float64) {
		out = append(out, Product{
			ID:        nextID,
			Name:      name,
			UnitPrice: decimal.NewFromFloat(price).Round(2),
			Margin:    decimal.NewFromFloat(margin).Round(2),
		})
		nextID++
	}

	// mice
	add("Mouse Gamer Logitech G502 HERO", 399.90, 0.35)
	add("Mouse Logitech M185 Wireless", 79.90, 0.55)
	add("Mouse Razer DeathAdder Essential", 249.90, 0.38)
	add("Mouse HyperX Pulsefire Core", 199.90, 0.40)
	add("Mouse Gamer Redragon Cobra", 129.90, 0.60)
	add("Mouse Logitech MX Master 3S", 799.90, 0.30)
	add("Mouse Razer Basilisk V3", 499.90, 0.34)
	add("Mouse Multilaser MO251", 59.90, 0.65)
	add("Mouse Gamer Fortrek Spider", 89.90, 0.62)
	add("Mouse Logitech G203 Lightsync", 169.90, 0.45)

	// keyboards
	add("Teclado Mecânico Logitech G Pro", 899.90, 0.32)
	add("Teclado Logitech K120", 99.90, 0.60)
	add("Teclado Mecânico Razer BlackWidow V3", 1099.90, 0.28)
	add("Teclado HyperX Alloy FPS Pro", 699.90, 0.35)
	add("Teclado Gamer Redragon Kumara", 279.90, 0.50)
	add("Teclado Logitech MX Keys", 699.90, 0.34)
	add("Teclado Gamer Fortrek Black Hawk", 199.90, 0.55)
	add("Teclado Multilaser Slim TC193", 89.90, 0.65)

	// headsets
	add("Headset Gamer Logitech G733", 799.90, 0.33)
	add("Headset Razer Kraken X", 349.90, 0.42)
	add("Headset HyperX Cloud II", 899.90, 0.30)
	add("Headset Gamer Redragon Zeus", 399.90, 0.45)
	add("Headset Multilaser Warrior", 199.90, 0.55)
	add("Headset Logitech H390 USB", 249.90, 0.48)

	// webcams
	add("Webcam Logitech C920 HD Pro", 699.90, 0.36)
	add("Webcam Logitech C270", 299.90, 0.45)
	add("Webcam Razer Kiyo", 899.90, 0.32)
	add("Webcam Multilaser WC050", 149.90, 0.58)

	// monitors
	add("Monitor Gamer LG Ultragear 27''", 2499.90, 0.25)
	add("Monitor Dell P2422H 24''", 1799.90, 0.28)

	return out
}
