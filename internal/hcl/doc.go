// Package hcl provides the concrete HCL implementation of config.Loader. It
// parses tour plan files, evaluates their expectation expressions with a small
// cty function table and translates the result into the format-agnostic model.
package hcl
