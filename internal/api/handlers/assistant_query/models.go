package assistant_query

// QueryRequest вопрос оператора на естественном языке
type QueryRequest struct {
	Question string `json:"question"`
}

// QueryResponse текстовый ответ ассистента
type QueryResponse struct {
	Answer string `json:"answer"`
}
