package main

// @title           Dummy Messages API
// @version         1.0.0
// @description     API simulada de mensagens para páginas de atendimento

// @BasePath  /
