// Package types defines the raw, canonical, and dimensional entity types,
// the pipeline configuration, the value-mapping tables, and standard errors
// for the medallion warehouse pipeline.
package types
