// devtoken firma un JWT para probar las mutaciones en local cuando JWT_SECRET está definido.
//
// Uso: go run ./cmd/devtoken -user op-1 -role bodeguero [-warehouse BLR-A] [-exp 120]
// Toma JWT_SECRET, JWT_ISSUER y JWT_EXPIRATION_MINUTES de la misma configuración que cmd/api.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/Inventario-visibility/pkg/config"
	"github.com/jhoicas/Inventario-visibility/pkg/jwt"
)

func main() {
	user := flag.String("user", "dev-operator", "user_id del token")
	role := flag.String("role", jwt.RoleBodeguero, "rol: admin | bodeguero | viewer")
	warehouse := flag.String("warehouse", "", "bodega asignada (opcional)")
	exp := flag.Int("exp", 0, "minutos de validez (0 = JWT_EXPIRATION_MINUTES)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if !cfg.JWT.Enabled() {
		fmt.Fprintln(os.Stderr, "JWT_SECRET no está definido: las mutaciones no exigen token")
		os.Exit(1)
	}
	switch *role {
	case jwt.RoleAdmin, jwt.RoleBodeguero, jwt.RoleViewer:
	default:
		fmt.Fprintf(os.Stderr, "Rol desconocido: %q\n", *role)
		os.Exit(2)
	}

	minutes := cfg.JWT.Expiration
	if *exp > 0 {
		minutes = *exp
	}
	token, err := jwt.Generate(cfg.JWT.Secret, jwt.Identity{UserID: *user, Role: *role, Warehouse: *warehouse}, cfg.JWT.Issuer, minutes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Firmar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
