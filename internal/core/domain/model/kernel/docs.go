// Package kernel holds the value objects shared by every storefront aggregate:
// UUID identifiers, Money, rental DateRange, the Clock and the DomainEvent
// plumbing aggregates use to announce their transitions.
package kernel
