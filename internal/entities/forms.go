package entities

// Form records hold raw client input. Fields tagged required must be present
// before anything leaves the service.

type ShipmentCreateForm struct {
	SenderName      string `form:"required"`
	Destination     string `form:"required"`
	WeightTons      string `form:"required"`
	SenderLastName  string `form:"optional"`
	NationalID      string `form:"optional"`
	OperationNumber string `form:"optional"`
	Description     string `form:"optional"`
}

type ShipmentEditForm struct {
	WeightTons  string  `form:"required"`
	Description *string `form:"optional"`
}

type StatusForm struct {
	Status string `form:"required"`
}

type Credentials struct {
	Username string `form:"required"`
	Password string `form:"required"`
}
