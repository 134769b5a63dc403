// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec holds the CBOR configuration used for machine-readable
// telemetry output.
//
// JSON is the default output format of ufpgactl. CBOR is offered for
// collectors that store snapshots compactly or sign them, so the
// encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted map
// keys, smallest integer encoding, no indefinite-length items. The
// same snapshot always produces the same bytes.
//
// Types shared with the JSON output carry only `json` struct tags;
// fxamacker/cbor falls back to them when `cbor` tags are absent.
// Values implementing encoding.TextMarshaler (bus locations, device
// numbers) are written as CBOR text strings.
//
// One snapshot per value:
//
//	data, err := codec.Marshal(report)
//
// A sequence of snapshots on a stream (RFC 8742):
//
//	encoder := codec.NewEncoder(os.Stdout)
//	for _, report := range reports {
//		encoder.Encode(report)
//	}
package codec
