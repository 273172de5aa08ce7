package remote

// todosResponse is the paginated envelope the todos endpoint returns.
type todosResponse struct {
	Todos []todoDTO `json:"todos"`
	Total int       `json:"total"`
	Skip  int       `json:"skip"`
	Limit int       `json:"limit"`
}

// todoDTO is a single remote todo item.
type todoDTO struct {
	ID        int    `json:"id"`
	Todo      string `json:"todo"`
	Completed bool   `json:"completed"`
	UserID    int    `json:"userId"`
}
