// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// KDFSource identifies which server record a set of KDF parameters came from.
// SRP attributes and key attributes are separate records and their parameters
// must never be mixed within one derivation.
type KDFSource int

const (
	// KDFSourceSRP marks parameters taken from [SRPAttributes].
	KDFSourceSRP KDFSource = iota + 1
	// KDFSourceKeyAttributes marks parameters taken from [KeyAttributes].
	KDFSourceKeyAttributes
)

// String returns a short label for logs.
func (s KDFSource) String() string {
	switch s {
	case KDFSourceSRP:
		return "srp"
	case KDFSourceKeyAttributes:
		return "key_attributes"
	default:
		return "unknown"
	}
}

// KDFParams is the complete input set for one KEK derivation apart from the
// password. Values are only built through [KDFParamsFromSRP] and
// [KDFParamsFromKeyAttributes] so the salt and costs always come from one
// record.
type KDFParams struct {
	Source   KDFSource
	Salt     string
	OpsLimit uint32
	MemLimit uint64
}

// KDFParamsFromSRP returns the KDF parameters of an SRP-registered account.
func KDFParamsFromSRP(attrs SRPAttributes) KDFParams {
	return KDFParams{
		Source:   KDFSourceSRP,
		Salt:     attrs.KEKSalt,
		OpsLimit: attrs.OpsLimit,
		MemLimit: attrs.MemLimit,
	}
}

// KDFParamsFromKeyAttributes returns the KDF parameters stored alongside the
// wrapped master key. Used only when no SRP attributes exist.
func KDFParamsFromKeyAttributes(attrs KeyAttributes) KDFParams {
	return KDFParams{
		Source:   KDFSourceKeyAttributes,
		Salt:     attrs.KEKSalt,
		OpsLimit: attrs.OpsLimit,
		MemLimit: attrs.MemLimit,
	}
}

// SameCost reports whether p and other describe the same derivation
// regardless of their source.
func (p KDFParams) SameCost(other KDFParams) bool {
	return p.Salt == other.Salt && p.OpsLimit == other.OpsLimit && p.MemLimit == other.MemLimit
}
