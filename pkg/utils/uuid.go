package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador alfanumérico, seguro para URLs e parâmetros de campanha
func GenerateID(size int) (string, error) {
	return gonanoid.Generate(characters, size)
}
