// Package middleware decorates a ports.SummaryCache with extra behaviour.
package middleware

import "github.com/aretw0/notequiz/pkg/ports"

// Middleware allows wrapping a SummaryCache to add behavior.
type Middleware func(ports.SummaryCache) ports.SummaryCache
