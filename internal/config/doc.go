// Package config defines the format-agnostic tour plan: which topics and
// lessons a run covers and which expectations override the lessons' own.
//
// The Model is the single input the registry resolves into runnable lessons.
// Concrete loaders, such as the HCL one, live in separate packages.
package config
