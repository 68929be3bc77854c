package password

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Política fija de la contraseña de un solo uso que se aprovisiona por flujo
// de creación/actualización de empleado.
const Length = 12

const (
	lowers  = "abcdefghijklmnopqrstuvwxyz"
	uppers  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
	symbols = "!#$%&*+-?@"
)

const alphabet = lowers + uppers + digits + symbols

// Generate produce una contraseña aleatoria de Length caracteres con al menos
// una minúscula, una mayúscula, un dígito y un símbolo. Usa crypto/rand; nunca math/rand.
func Generate() (string, error) {
	buf := make([]byte, Length)

	// Una de cada clase para cumplir la política, el resto del alfabeto completo.
	classes := []string{lowers, uppers, digits, symbols}
	for i, class := range classes {
		c, err := pick(class)
		if err != nil {
			return "", err
		}
		buf[i] = c
	}
	for i := len(classes); i < Length; i++ {
		c, err := pick(alphabet)
		if err != nil {
			return "", err
		}
		buf[i] = c
	}

	// Mezcla Fisher-Yates con índices de crypto/rand para no dejar las clases en posiciones fijas.
	for i := len(buf) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", fmt.Errorf("password: %w", err)
		}
		j := n.Int64()
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf), nil
}

func pick(set string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, fmt.Errorf("password: %w", err)
	}
	return set[n.Int64()], nil
}
