package service

const (
	MaxLoanAmount   = 1_000_000_000.0 // 1 billón
	MaxInterestRate = 1000.0          // 1000% anual
	MaxTermYears    = 50              // 600 meses
	MinTermYears    = 1

	// Límites para la comparación de plazos
	MaxComparedTerms = 10

	// tolerancia de redondeo por fila (un centavo)
	RoundingTolerance = 0.01
)
