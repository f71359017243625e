package domain

import (
	interfaces "github.com/Umidjon1990/tolovnazorat-bot/internal/domain/interfaces"
	types "github.com/Umidjon1990/tolovnazorat-bot/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	IdentityToken = types.IdentityToken
	Ack           = types.Ack
	CourseType    = types.CourseType
	Course        = types.Course
	UserRecord    = types.UserRecord
	GroupAccess   = types.GroupAccess
	Subscription  = types.Subscription
	HostUser      = types.HostUser
	Receipt       = types.Receipt
	Step          = types.Step
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Gateway     = interfaces.Gateway
	TokenSource = interfaces.TokenSource
	Notifier    = interfaces.Notifier
	Confirmer   = interfaces.Confirmer
	Exiter      = interfaces.Exiter
	HostBridge  = interfaces.HostBridge
)

const (
	CourseStandard = types.CourseStandard
	CoursePremium  = types.CoursePremium

	StepContract     = types.StepContract
	StepCourseSelect = types.StepCourseSelect
	StepPhone        = types.StepPhone
	StepPayment      = types.StepPayment
)

// Steps lists every step in flow order.
var Steps = types.Steps
