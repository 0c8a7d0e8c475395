package gen

// Regenerate api.gen.go after editing spec/openapi.yaml.
//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=oapi-codegen.yaml ../../../spec/openapi.yaml
