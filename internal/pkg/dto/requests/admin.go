package requests

type CreateDoctor struct {
	ID             string `json:"id" validate:"required,startswith=DOC"`
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	Age            int    `json:"age" validate:"required,gt=0"`
	Gender         string `json:"gender" validate:"required"`
	Specialization string `json:"specialization" validate:"required"`
	HospitalID     string `json:"hospital_id" validate:"required"`
	Fee            int    `json:"fee" validate:"gte=0"`
}

type CreateHospital struct {
	ID       string `json:"id" validate:"required,startswith=HSP"`
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
	Mobile   string `json:"mobile" validate:"required"`
}

type CreateReceptionist struct {
	ID         string `json:"id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
	Age        int    `json:"age" validate:"required,gt=0"`
	HospitalID string `json:"hospital_id" validate:"required,startswith=HSP"`
	Mobile     string `json:"mobile" validate:"required"`
}
