// seed genera un script SQL con datos de demostración para la plataforma:
// una empresa, un usuario administrador, clientes, catálogo de hardware con
// series y un embudo comercial de ejemplo.
//
// Uso: go run ./cmd/seed [email] [password]
// Por defecto crea admin@demo.operix.co / operix123.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_demo.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	email := "admin@demo.operix.co"
	password := "operix123"
	if len(os.Args) > 1 {
		email = os.Args[1]
	}
	if len(os.Args) > 2 {
		password = os.Args[2]
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar hash: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_demo.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	companyID := uuid.NewString()
	userID := uuid.NewString()
	clientA := uuid.NewString()
	clientB := uuid.NewString()
	oppID := uuid.NewString()
	quoteID := uuid.NewString()
	hwRouter := uuid.NewString()
	hwSwitch := uuid.NewString()

	out.WriteString("-- Datos de demostración Operix\n")
	out.WriteString("-- Generado por cmd/seed\n\n")

	fmt.Fprintf(out, "INSERT INTO companies (id, name, tax_id, address, phone, email, status, created_at, updated_at) VALUES\n")
	fmt.Fprintf(out, "  ('%s', 'Operix Demo SAS', '900900900-1', 'Cra 7 # 71-21, Bogotá', '+57 601 7430000', 'contacto@demo.operix.co', 'active', '%s', '%s')\n", companyID, now, now)
	out.WriteString("ON CONFLICT (tax_id) DO NOTHING;\n\n")

	fmt.Fprintf(out, "INSERT INTO users (id, company_id, email, password_hash, name, role, status, created_at, updated_at) VALUES\n")
	fmt.Fprintf(out, "  ('%s', '%s', '%s', '%s', 'Administrador Demo', 'admin', 'active', '%s', '%s')\n",
		userID, companyID, escapeSQL(email), string(hash), now, now)
	out.WriteString("ON CONFLICT (email) DO NOTHING;\n\n")

	fmt.Fprintf(out, "INSERT INTO clients (id, company_id, company_name, tax_id, contact_name, email, phone, status, created_at, updated_at) VALUES\n")
	fmt.Fprintf(out, "  ('%s', '%s', 'Minera Andes SAS', '900123456-7', 'Rosa Quintero', 'rquintero@mineraandes.co', '+57 3001234567', 'active', '%s', '%s'),\n", clientA, companyID, now, now)
	fmt.Fprintf(out, "  ('%s', '%s', 'Clínica Santa Fe', '800987654-3', 'Luis Paredes', 'lparedes@csfe.co', '+57 3109876543', 'active', '%s', '%s')\n", clientB, companyID, now, now)
	out.WriteString("ON CONFLICT (company_id, tax_id) DO NOTHING;\n\n")

	fmt.Fprintf(out, "INSERT INTO hardware_items (id, company_id, sku, name, cost_price, min_stock, created_at, updated_at) VALUES\n")
	fmt.Fprintf(out, "  ('%s', '%s', 'RT-AX-01', 'Router empresarial AX6000', 850.00, 3, '%s', '%s'),\n", hwRouter, companyID, now, now)
	fmt.Fprintf(out, "  ('%s', '%s', 'SW-24P-01', 'Switch administrable 24 puertos PoE', 1200.00, 2, '%s', '%s')\n", hwSwitch, companyID, now, now)
	out.WriteString("ON CONFLICT (company_id, sku) DO NOTHING;\n\n")

	out.WriteString("INSERT INTO serial_numbers (id, company_id, serial, hardware_id, status, assigned_project_id, created_at, updated_at) VALUES\n")
	serials := []struct {
		serial string
		hwID   string
	}{
		{"RTAX-2026-0001", hwRouter},
		{"RTAX-2026-0002", hwRouter},
		{"SW24-2026-0001", hwSwitch},
		{"SW24-2026-0002", hwSwitch},
	}
	for i, s := range serials {
		sep := ","
		if i == len(serials)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  ('%s', '%s', '%s', '%s', 'in_stock', '', '%s', '%s')%s\n",
			uuid.NewString(), companyID, s.serial, s.hwID, now, now, sep)
	}
	out.WriteString("ON CONFLICT (company_id, serial) DO NOTHING;\n\n")

	fmt.Fprintf(out, "INSERT INTO opportunities (id, company_id, client_id, assigned_to, service_unit, package_id, estimated_value, status, created_at, updated_at) VALUES\n")
	fmt.Fprintf(out, "  ('%s', '%s', '%s', '%s', 'redes', '', 15000.00, 'negotiation', '%s', '%s')\n",
		oppID, companyID, clientA, userID, now, now)
	out.WriteString("ON CONFLICT (id) DO NOTHING;\n\n")

	fmt.Fprintf(out, "INSERT INTO quotes (id, company_id, opportunity_id, items, subtotal, tax, total, currency, status, created_at, updated_at) VALUES\n")
	items := `[{"description":"Cableado estructurado sede principal","quantity":1,"unit_price":10000.00},{"description":"Configuración de equipos","quantity":10,"unit_price":250.00}]`
	fmt.Fprintf(out, "  ('%s', '%s', '%s', '%s', 12500.00, 2250.00, 14750.00, 'COP', 'enviado', '%s', '%s')\n",
		quoteID, companyID, oppID, escapeSQL(items), now, now)
	out.WriteString("ON CONFLICT (id) DO NOTHING;\n")

	fmt.Printf("Generado %s\n", outPath)
	fmt.Printf("Credenciales demo: %s / %s\n", email, password)
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
